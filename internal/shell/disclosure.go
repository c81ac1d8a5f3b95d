package shell

// Disclosure is a panel opened from a trigger that closes when the user
// clicks outside its bounds or picks an entry inside it.
//
// The navbar's notification and profile panels, and the mobile sidebar
// overlay, are all disclosures. They are independent: opening one never
// closes another.
type Disclosure struct {
	Open bool `json:"open"`
}

// Toggle flips the panel from its trigger.
func (d *Disclosure) Toggle() {
	d.Open = !d.Open
}

// Dismiss closes the panel after a click outside its bounds.
// It reports whether the state changed; dismissing a closed panel is a
// no-op.
func (d *Disclosure) Dismiss() bool {
	if !d.Open {
		return false
	}
	d.Open = false
	return true
}

// Select closes the panel after an entry inside it was chosen.
func (d *Disclosure) Select() bool {
	return d.Dismiss()
}
