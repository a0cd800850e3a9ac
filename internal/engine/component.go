package engine

type Component interface {
	Start()
	Update(deltaTime float32)
	SetGameObject(g *GameObject)
	GetGameObject() *GameObject
}

// Pauser is implemented by components that hold resources while playing,
// such as event listeners. Play is called when the owning object starts or
// resumes, Pause when it is paused.
type Pauser interface {
	Play()
	Pause()
}

// Remover is implemented by components that need to release state when they
// are detached from their GameObject.
type Remover interface {
	Remove()
}

// LookProvider is implemented by components that control camera look direction.
// Used by Camera to aim along a direction other than the raw transform.
type LookProvider interface {
	GetLookDirection() (x, y, z float32)
}

// BaseComponent provides default implementation for Component interface
type BaseComponent struct {
	gameObject *GameObject
}

func (b *BaseComponent) Start() {}

func (b *BaseComponent) Update(deltaTime float32) {}

func (b *BaseComponent) SetGameObject(g *GameObject) {
	b.gameObject = g
}

func (b *BaseComponent) GetGameObject() *GameObject {
	return b.gameObject
}

// Scene returns the scene of the owning object, or nil if the component is
// detached or its object is not in a scene yet.
func (b *BaseComponent) Scene() *Scene {
	if b.gameObject == nil {
		return nil
	}
	return b.gameObject.Scene
}
