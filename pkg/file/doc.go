// Package file validates uploaded files and turns accepted ones into
// in-memory previews.
//
// Content types are always sniffed from the first bytes of the file with
// http.DetectContentType, never taken from the extension or the client
// supplied header, so a renamed executable is not accepted as an image.
//
// # Usage
//
//	policy := file.DefaultImagePolicy() // PNG, JPG, JPEG, GIF up to 5MB
//
//	fh := r.MultipartForm.File["file"][0]
//	if err := file.Check(fh, policy); err != nil {
//		alert := file.UserMessage(err)
//		// "Invalid file type. Please select PNG, JPG, JPEG, or GIF files only."
//		// "File size too large. Please select an image smaller than 5MB."
//	}
//
//	preview, err := file.ReadPreview(ctx, fh, policy)
//	// preview.DataURL can be used directly as an <img> source
//
// A Previewer serves one upload slot. Each Load cancels the read started by
// the previous one:
//
//	pv := file.NewPreviewer(policy)
//	preview, err := pv.Load(ctx, fh).Await()
//	if errors.Is(err, file.ErrSuperseded) {
//		// a newer file was selected for this slot
//	}
//
// # Error Handling
//
// Policy violations are returned as *RejectedError, which unwraps to
// ErrMIMETypeNotAllowed or ErrFileTooLarge:
//
//	if errors.Is(err, file.ErrFileTooLarge) {
//		// ...
//	}
//
// I/O failures wrap ErrOpen or ErrRead.
package file
