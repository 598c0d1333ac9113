package wiredlist

// Debug, when set, receives a line for every splice that moves nodes between
// two lists.
var Debug func(message string, args ...interface{})

func dbg(message string, args ...interface{}) {
	if Debug == nil {
		return
	}
	Debug(message, args...)
}
