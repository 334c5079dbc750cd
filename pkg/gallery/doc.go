// Package gallery holds the ordered, capacity-bounded image collection that
// feeds the layout planner.
//
// # Handles
//
// A [Handle] is an immutable reference to encoded image bytes plus the
// display name and natural pixel size. [Decode] sniffs the format from the
// leading bytes (JPEG, PNG, GIF, WebP, BMP) and falls back to the file
// extension for TGA, which has no magic number.
//
// # Collection
//
// [Collection] preserves insertion order, since the index of a handle is
// the index of its placement. Adding past [Limits.Max] accepts what fits
// and reports the excess as an advisory; [Collection.Ready] reports an
// advisory until [Limits.Min] handles are present. Observers registered
// with [Collection.OnChange] see every length change.
//
// # Loading
//
// [Loader] is a queue of pending decodes. [Loader.Run] decodes concurrently
// but invokes each item's completion callback in enqueue order, so the
// collection fills deterministically:
//
//	l := gallery.NewLoader()
//	for _, f := range files {
//	    l.Enqueue(f.Name, f.Data, func(h gallery.Handle, err error) {
//	        if err == nil {
//	            coll.Add(h)
//	        }
//	    })
//	}
//	err := l.Run(ctx)
package gallery
