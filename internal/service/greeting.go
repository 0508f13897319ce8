package service

// DefaultName is used when the caller did not say who they are.
const DefaultName = "friend"

// GreetingService owns the greeting wording.
type GreetingService struct{}

func NewGreetingService() *GreetingService {
	return &GreetingService{}
}

// Greet builds the greeting for name, falling back to DefaultName when
// name is empty.
func (g *GreetingService) Greet(name string) string {
	if name == "" {
		name = DefaultName
	}
	return "Hello there, " + name + "!"
}
