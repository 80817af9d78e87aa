/*
Package dragdrop implements the session engine of a drag and drop system: an item is
picked up under the pointer, moved across the registered destinations of a container
and dropped onto one of them, which accepts, rejects or transforms the operation.

The Manager owns the single active session. The host feeds it the pointer positions
and registers the regions of its visual tree together with the destinations handling them.
Sources, destinations and animators are capabilities implemented by the host; optional
capabilities (autoscrolling, custom animations, scroll increments) are detected with
type assertions.

All the calls must happen on the same execution context, usually the UI event loop.
Deferred work (autoscroll ticks, animation frames, acknowledgment timeouts) is
scheduled through a Scheduler, for which Loop is provided:

	package main

	import (
		"context"
		"log"

		"gioui.org/f32"
		"github.com/esimov/dragdrop"
	)

	func main() {
		loop := dragdrop.NewLoop()
		m := dragdrop.NewManager(loop, dragdrop.DefaultConfig())
		if err := m.Attach(container); err != nil {
			log.Fatal(err)
		}
		m.Register(trashRegion, trash)

		item := dragdrop.NewItem(map[string]any{"id": 42}, dragdrop.NewSnapshot(img))
		if _, err := m.Start(item, source, f32.Pt(10, 10)); err != nil {
			log.Fatal(err)
		}
		m.Update(f32.Pt(120, 40))
		m.End(f32.Pt(120, 40), false)

		loop.Run(context.Background())
	}

The giodrag package connects a Manager to the pointer events and painting operations of Gio.
*/
package dragdrop
