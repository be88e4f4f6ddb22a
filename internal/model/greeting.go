package model

// Greeting is the body served on /api/hello.
type Greeting struct {
	Message string `json:"message"`
}

// DefaultGreeting is what the development server answers with.
var DefaultGreeting = Greeting{Message: "Hello, REST API!"}
