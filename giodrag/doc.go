// Package giodrag connects a dragdrop.Manager to Gio. It turns the pointer
// events of a drag handle into session calls, tracks the regions laid out
// in each frame and paints the dragged snapshot.
package giodrag
