package configs

// Configurable is implemented by typed option values that can be set from a
// config file.
type Configurable interface {
	ConfigExpr() string
}
