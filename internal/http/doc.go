// Package http exposes the site runtime over a chi router.
//
// Routes mount under the configured base path (default /api):
//   - Content documents: /content, /content/{key}
//   - Pages: /pages, /pages/{slug}
//   - Rendering: /render, /render/{slug}
//   - Navigation: /navigation/resolve, /links
//   - Enquiries: /enquiries, /enquiries/{id}, /enquiries/export
//   - Images: /images, /images/{id}
//   - Change stream: /events (websocket)
//
// Reads and enquiry submission are public; every other write requires a
// bearer token checked by the auth middleware.
package http
