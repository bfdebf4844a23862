// Package writers maps generation modes to the functions that render them.
//
// Design:
//   • output owns the fragment format (member bodies, full layer objects, "," lines).
//   • app only picks a mode; it never formats JSON itself.
//   • Wire types live in pkg/api so the emitted keys stay stable.
package writers
