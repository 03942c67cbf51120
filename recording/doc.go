// Package recording captures nodify drawing as typed commands.
//
// A Recorder implements nodify.DrawContext. Instead of rasterizing, it
// stores every call as a Command together with the transform in effect,
// so tests and tools can inspect exactly what a scene drew and in which
// order. A finished Recording can be replayed into any other DrawContext.
//
// # Architecture
//
// The system follows a Command Pattern with three components:
//
//   - Recorder: captures DrawContext calls as commands
//   - Recording: the immutable command list plus its ResourcePool
//   - Playback: replays the commands into a target DrawContext
//
// Paths are cloned into a ResourcePool and referenced by PathRef, so later
// edits of the scene never change what was recorded.
//
// # Basic Usage
//
//	rec := recording.NewRecorder()
//	view.Render(rec)
//	r := rec.FinishRecording()
//
//	for _, cmd := range r.Commands() {
//	    fmt.Println(cmd.Type())
//	}
//
//	// Replay into a raster target
//	dc := raster.NewContext(800, 600)
//	r.Playback(dc)
package recording
