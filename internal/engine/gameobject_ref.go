package engine

// GameObjectRef points at another node of the scene by UID. Components that
// act on a node other than their own, such as page-controls moving its page,
// hold one instead of a pointer so a removed node simply stops resolving.
type GameObjectRef struct {
	UID uint64 // 0 means unset
}

// Get resolves the reference in scene. It returns nil when the reference is
// unset, scene is nil, or the node is no longer in scene.
func (r GameObjectRef) Get(scene *Scene) *GameObject {
	if r.UID == 0 || scene == nil {
		return nil
	}
	return scene.FindByUID(r.UID)
}

// IsValid reports whether the reference is set. It does not check that the
// node still exists.
func (r GameObjectRef) IsValid() bool {
	return r.UID != 0
}

// Set points the reference at g, or clears it when g is nil.
func (r *GameObjectRef) Set(g *GameObject) {
	if g == nil {
		r.UID = 0
		return
	}
	r.UID = g.UID
}

// SetByName points the reference at the first node in scene called name.
// The reference is left unchanged and false returned when there is none.
func (r *GameObjectRef) SetByName(scene *Scene, name string) bool {
	if scene == nil {
		return false
	}
	g := scene.FindByName(name)
	if g == nil {
		return false
	}
	r.Set(g)
	return true
}

func (r *GameObjectRef) Clear() {
	r.UID = 0
}
