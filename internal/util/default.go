package util

// SetDefaultIfZero sets |*v| to |defaultVal| if it holds the zero value,
// for filling in unset option fields.
func SetDefaultIfZero[V comparable](v *V, defaultVal V) {
	var zeroVal V
	if *v == zeroVal {
		*v = defaultVal
	}
}
