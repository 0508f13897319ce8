package service

// Services is a container for all business services.
//
// Handlers receive the container instead of individual services so that
// new services don't change the wiring in main.
type Services struct {
	Greeting *GreetingService
}

// NewServices constructs the service container.
func NewServices() *Services {
	return &Services{
		Greeting: NewGreetingService(),
	}
}
