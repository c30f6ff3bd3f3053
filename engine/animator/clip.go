package animator

// Clip describes a named animation clip. Only timing is modelled; keyframe data
// stays with whatever renders the skeleton.
type Clip struct {
	Name     string
	Duration float64
	Loop     bool
}
