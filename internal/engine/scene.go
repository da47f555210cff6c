package engine

type Scene struct {
	Name        string
	GameObjects []*GameObject

	uidMap  map[uint64]*GameObject
	nextUID uint64
}

func NewScene(name string) *Scene {
	return &Scene{
		Name:        name,
		GameObjects: make([]*GameObject, 0),
		uidMap:      make(map[uint64]*GameObject),
		nextUID:     1,
	}
}

func (s *Scene) AddGameObject(g *GameObject) {
	if g.UID == 0 {
		g.UID = s.nextUID
		s.nextUID++
	} else if g.UID >= s.nextUID {
		s.nextUID = g.UID + 1
	}
	g.Scene = s
	s.GameObjects = append(s.GameObjects, g)
	s.uidMap[g.UID] = g
}

func (s *Scene) RemoveGameObject(g *GameObject) {
	for i, obj := range s.GameObjects {
		if obj == g {
			s.GameObjects = append(s.GameObjects[:i], s.GameObjects[i+1:]...)
			delete(s.uidMap, g.UID)
			return
		}
	}
}

// FindByUID returns the object with the given UID, or nil.
func (s *Scene) FindByUID(uid uint64) *GameObject {
	return s.uidMap[uid]
}

func (s *Scene) FindByName(name string) *GameObject {
	for _, g := range s.GameObjects {
		if g.Name == name {
			return g
		}
	}
	return nil
}
