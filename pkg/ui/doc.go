// Package ui renders the small HTML fragments a form page swaps in and out:
// alert banners, loading buttons, the password strength meter, upload
// previews and the select-all checkbox of a table.
//
// Every fragment is a templ.Component, so it can be returned from a handler
// with handler.Templ and patched into the page by Datastar, or rendered into
// a larger templ page. All text and attribute values are HTML-escaped.
//
// The markup follows Bootstrap 5 class names:
//
//	ui.Alert(ui.Danger("Email is required", "Password is required"))
//	// <div class="alert alert-danger alert-dismissible fade show" role="alert" data-dismiss-after="5000">
//	//   Email is required<br>Password is required
//	//   <button type="button" class="btn-close" data-bs-dismiss="alert" aria-label="Close"></button>
//	// </div>
package ui
