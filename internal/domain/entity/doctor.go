package entity

// Doctor is a read-only directory entry fetched from the clinic platform.
// Rating is carried through only when the upstream supplies one; the gateway
// never invents a value.
type Doctor struct {
	ID             string   `json:"id"`
	Name           string   `json:"name"`
	Specialization string   `json:"specialization"`
	Address        string   `json:"address,omitempty"`
	Rating         *float64 `json:"rating,omitempty"`
}
