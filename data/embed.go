// Package data embeds the static fleet catalog shipped with the site.
package data

import _ "embed"

//go:embed machines.yaml
var machines []byte

// Machines returns a copy of the embedded catalog document.
func Machines() []byte {
	out := make([]byte, len(machines))
	copy(out, machines)
	return out
}
