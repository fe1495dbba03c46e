package engine

// Scene is a flat registry of root and child nodes.
type Scene struct {
	Name  string
	Nodes []*Node
}

func NewScene(name string) *Scene {
	return &Scene{
		Name:  name,
		Nodes: make([]*Node, 0),
	}
}

func (s *Scene) AddNode(n *Node) {
	n.Scene = s
	s.Nodes = append(s.Nodes, n)
}

func (s *Scene) RemoveNode(n *Node) {
	for i, obj := range s.Nodes {
		if obj == n {
			s.Nodes = append(s.Nodes[:i], s.Nodes[i+1:]...)
			n.Scene = nil
			return
		}
	}
}

func (s *Scene) FindByName(name string) *Node {
	for _, n := range s.Nodes {
		if n.Name == name {
			return n
		}
	}
	return nil
}

func (s *Scene) FindByTag(tag string) []*Node {
	var result []*Node
	for _, n := range s.Nodes {
		if n.HasTag(tag) {
			result = append(result, n)
		}
	}
	return result
}
