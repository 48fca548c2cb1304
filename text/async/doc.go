// Package async runs text layout and rendering off the caller's goroutine.
//
// A Manager owns a bounded set of loaders. Each loader processes one task
// at a time on its own worker, so a loader's font caches are never shared.
// Results are queued and delivered to observers on the goroutine that
// calls Dispatch or Run:
//
//	m := async.NewManager(async.TextLoaderFactory(service))
//	defer m.Close()
//
//	id := m.RequestLoad(async.Parameters{
//		RequestType: async.RenderFixedSize,
//		Text:        "Hello",
//		Width:       200,
//		Height:      40,
//		Format:      image.FormatRGBA8,
//	}, observer)
//
//	go m.Run(ctx)
//
// A task is Waiting until a loader is idle, then Running until its result
// is dispatched. Cancelled tasks and tasks of destroyed observers are
// never delivered.
package async
