// Package resolve turns scanned enum definitions into a renderable
// form.
//
// Resolution pipeline:
//  1. Walk the members in declaration order, tracking a running counter
//  2. Render each discriminant to source text, keeping explicit
//     literals exactly as written and filling absent ones from the
//     counter
//  3. Classify the enum as integer, textual or tuple from its first
//     member
//  4. Derive the payload field types and conversion method name from
//     the directive arguments
package resolve
