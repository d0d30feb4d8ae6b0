package testutil

import (
	"errors"
	"time"
)

// Person has faithful accessors for a spread of field types.
type Person struct {
	name     string
	age      int
	active   bool
	verified *bool
	born     time.Time
	tags     []string
	scores   map[string]int
	height   float64
	nickname *string
}

func (p *Person) GetName() string              { return p.name }
func (p *Person) SetName(name string)          { p.name = name }
func (p *Person) Age() int                     { return p.age }
func (p *Person) SetAge(age int)               { p.age = age }
func (p *Person) IsActive() bool               { return p.active }
func (p *Person) SetActive(active bool)        { p.active = active }
func (p *Person) GetVerified() *bool           { return p.verified }
func (p *Person) SetVerified(verified *bool)   { p.verified = verified }
func (p *Person) Born() time.Time              { return p.born }
func (p *Person) SetBorn(born time.Time)       { p.born = born }
func (p *Person) Tags() []string               { return p.tags }
func (p *Person) SetTags(tags []string)        { p.tags = tags }
func (p *Person) Scores() map[string]int       { return p.scores }
func (p *Person) SetScores(s map[string]int)   { p.scores = s }
func (p *Person) Height() float64              { return p.height }
func (p *Person) SetHeight(height float64)     { p.height = height }
func (p *Person) Nickname() *string            { return p.nickname }
func (p *Person) SetNickname(nickname *string) { p.nickname = nickname }

// Swapped returns the second field from the first field's getter.
type Swapped struct {
	first  string
	second string
}

func (s *Swapped) GetFirst() string   { return s.second }
func (s *Swapped) SetFirst(v string)  { s.first = v }
func (s *Swapped) GetSecond() string  { return s.second }
func (s *Swapped) SetSecond(v string) { s.second = v }

// Constant ignores its setter.
type Constant struct {
	label string
	count int
}

func (c *Constant) Count() int        { return 42 }
func (c *Constant) SetCount(n int)    { c.count = n }
func (c *Constant) Label() string     { return c.label }
func (c *Constant) SetLabel(l string) { c.label = l }

// SameObject round-trips every field but is never Equal to itself.
type SameObject struct {
	a string
	b bool
	c *bool
}

func (s *SameObject) GetA() string   { return s.a }
func (s *SameObject) SetA(a string)  { s.a = a }
func (s *SameObject) IsB() bool      { return s.b }
func (s *SameObject) SetB(b bool)    { s.b = b }
func (s *SameObject) GetC() *bool    { return s.c }
func (s *SameObject) SetC(c *bool)   { s.c = c }

// Equal returns false when o is s.
func (s *SameObject) Equal(o *SameObject) bool {
	if s == o {
		return false
	}
	if o == nil {
		return false
	}
	return s.a == o.a && s.b == o.b && s.c == o.c
}

// Exploding panics in its setter.
type Exploding struct {
	value int
}

func (e *Exploding) Value() int     { return e.value }
func (e *Exploding) SetValue(v int) { panic("exploding setter") }

// Limited rejects every value in its setter.
type Limited struct {
	limit int
}

// ErrLimit is returned by Limited.SetLimit.
var ErrLimit = errors.New("limit rejected")

func (l *Limited) Limit() int             { return l.limit }
func (l *Limited) SetLimit(n int) error   { return ErrLimit }

// Guarded has a pair that breaks and a pair that works; tests exclude the
// broken one.
type Guarded struct {
	secret string
	public string
}

func (g *Guarded) GetSecret() string  { return "redacted" }
func (g *Guarded) SetSecret(s string) { g.secret = s }
func (g *Guarded) GetPublic() string  { return g.public }
func (g *Guarded) SetPublic(p string) { g.public = p }

// Counter counts setter calls.
type Counter struct {
	Calls map[string]int
	total int
	extra int
}

// NewCounter creates a counter.
func NewCounter() *Counter {
	return &Counter{Calls: make(map[string]int)}
}

func (c *Counter) Total() int { return c.total }
func (c *Counter) SetTotal(n int) {
	c.Calls["SetTotal"]++
	c.total = n
}
func (c *Counter) Extra() int { return c.extra }
func (c *Counter) SetExtra(n int) {
	c.Calls["SetExtra"]++
	c.extra = n
}

// Arity records which constructor built it.
type Arity struct {
	Used int
	A    string
	B    int64
	C    string
}

func NewArity0() *Arity                          { return &Arity{Used: 0} }
func NewArity1(a string) *Arity                  { return &Arity{Used: 1, A: a} }
func NewArity3(a string, b int64, c string) *Arity { return &Arity{Used: 3, A: a, B: b, C: c} }

// Pair has two fields of the same type.
type Pair struct {
	Left  string
	Right string
	Count int64
	Total int64
}

// Node references itself.
type Node struct {
	Next  *Node
	Value int
}

// NewLinkedNode takes its own type and must never be called by synthesis.
func NewLinkedNode(next *Node) *Node {
	return &Node{Next: next, Value: 1}
}

// Ping and Pong reference each other.
type Ping struct {
	Pong  *Pong
	Label string
}

type Pong struct {
	Ping  *Ping
	Label string
}

// Tree holds children of its own type.
type Tree struct {
	Children []*Tree
	Name     string
}

// Flaky has one failing and one working constructor.
type Flaky struct {
	Via string
}

// ErrFlaky is returned by NewFlaky.
var ErrFlaky = errors.New("flaky constructor")

func NewFlaky(n int) (*Flaky, error) { return nil, ErrFlaky }
func NewFlakyFallback() *Flaky       { return &Flaky{Via: "fallback"} }

// Fragile panics in its only constructor.
type Fragile struct {
	Name string
}

func NewFragile(name string) *Fragile { panic("fragile constructor") }

// Handler has no constructors.
type Handler func()

// Holder needs a Handler.
type Holder struct {
	H Handler
}

// NewHolder is the only constructor of Holder.
func NewHolder(h Handler) *Holder { return &Holder{H: h} }

// Celsius is a named basic type.
type Celsius float64

// Percent is a named basic type built by a constructor.
type Percent int

// NewPercent clamps n to a percentage.
func NewPercent(n uint8) Percent {
	return Percent(int(n) % 101)
}

// Shape is satisfied by *Square.
type Shape interface {
	Area() float64
}

// Square implements Shape.
type Square struct {
	Side float64
}

func (s *Square) Area() float64 { return s.Side * s.Side }

// Containers groups container-shaped fields.
type Containers struct {
	List  []string
	Fixed [3]int
	Set   map[string]struct{}
	Dict  map[string]int
	Named Celsius
}

// Settings has nilable and non-nilable setters.
type Settings struct {
	name    string
	retries int
	tags    []string
	labels  map[string]string
	parent  *Settings
	enabled bool
}

func NewSettings(name string, retries int) *Settings {
	return &Settings{
		name:    name,
		retries: retries,
		tags:    []string{"default"},
		labels:  map[string]string{"k": "v"},
		parent:  &Settings{name: "parent"},
		enabled: true,
	}
}

func (s *Settings) Name() string                 { return s.name }
func (s *Settings) SetName(n string)             { s.name = n }
func (s *Settings) Retries() int                 { return s.retries }
func (s *Settings) SetRetries(n int)             { s.retries = n }
func (s *Settings) Tags() []string               { return s.tags }
func (s *Settings) SetTags(t []string)           { s.tags = t }
func (s *Settings) Labels() map[string]string    { return s.labels }
func (s *Settings) SetLabels(l map[string]string) { s.labels = l }
func (s *Settings) Parent() *Settings            { return s.parent }
func (s *Settings) SetParent(p *Settings)        { s.parent = p }
func (s *Settings) IsEnabled() bool              { return s.enabled }
func (s *Settings) SetEnabled(e bool)            { s.enabled = e }
