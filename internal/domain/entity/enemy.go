package entity

// Variant selects an enemy's behaviour.
type Variant int

const (
	// VariantNormal patrols its route.
	VariantNormal Variant = iota
	// VariantIntelligent patrols and throws bananas.
	VariantIntelligent
)

func (v Variant) String() string {
	if v == VariantIntelligent {
		return "intelligent"
	}
	return "normal"
}

const (
	NormalMonkeySpeed      = 0.5
	IntelligentMonkeySpeed = 0.5
	// BananaInterval is the number of landed frames between throws.
	BananaInterval = 300
	// ThrowInset shifts a thrown banana back from the monkey's leading edge.
	ThrowInset = 5.0
)

// DefaultRoute is used when an enemy is placed without a route.
var DefaultRoute = []float64{30}

// Enemy is a monkey that walks back and forth along a cyclic route.
// Route holds the distance of each leg; reaching it turns the enemy around.
type Enemy struct {
	Body
	Variant     Variant
	FacingRight bool
	Route       []float64
	Segment     int
	Travelled   float64
	Landed      bool
	Dead        bool

	FireTimer int
	Bananas   []*Projectile

	sizes Sizes
}

func NewEnemy(v Variant, x, y float64, facingRight bool, route []float64, sizes Sizes) *Enemy {
	if len(route) == 0 {
		route = DefaultRoute
	}
	e := &Enemy{
		Variant:     v,
		FacingRight: facingRight,
		Route:       append([]float64(nil), route...),
		sizes:       sizes,
	}
	e.Body = newBody(x, y, sizes.Of(e.Sprite()), EnemyGravity)
	return e
}

func (e *Enemy) Speed() float64 {
	if e.Variant == VariantIntelligent {
		return IntelligentMonkeySpeed
	}
	return NormalMonkeySpeed
}

// Throws reports whether the enemy fires bananas.
func (e *Enemy) Throws() bool {
	return e.Variant == VariantIntelligent
}

// Bounds returns an empty box once the enemy is dead.
func (e *Enemy) Bounds() Rect {
	if e.Dead {
		return Rect{X: e.X, Y: e.Y}
	}
	return e.Body.Bounds()
}

func (e *Enemy) Kill() {
	e.Dead = true
}

// LegLength is the distance of the current route leg.
func (e *Enemy) LegLength() float64 {
	return e.Route[e.Segment]
}

// TurnAround reverses direction and starts the next leg of the route.
func (e *Enemy) TurnAround() {
	e.FacingRight = !e.FacingRight
	e.Segment = (e.Segment + 1) % len(e.Route)
	e.Travelled = 0
}

// Throw spawns a banana whose top-left corner sits ThrowInset left of the
// leading edge, a quarter of the way down.
func (e *Enemy) Throw() *Projectile {
	box := e.Body.Bounds()
	size := e.sizes.Of(SpriteBanana)
	left := box.Left() - ThrowInset
	if e.FacingRight {
		left = box.Right() - ThrowInset
	}
	top := box.Top() + box.H*0.25
	b := NewBanana(left+size.W/2, top+size.H/2, e.FacingRight, size)
	e.Bananas = append(e.Bananas, b)
	return b
}

func (e *Enemy) CompactBananas() {
	e.Bananas = CompactProjectiles(e.Bananas)
}

func (e *Enemy) Sprite() Sprite {
	switch {
	case e.Variant == VariantIntelligent && e.FacingRight:
		return SpriteIntelligentMonkeyRight
	case e.Variant == VariantIntelligent:
		return SpriteIntelligentMonkeyLeft
	case e.FacingRight:
		return SpriteNormalMonkeyRight
	default:
		return SpriteNormalMonkeyLeft
	}
}
