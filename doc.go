// Package conic provides planar conic sections, principally ellipses, in
// implicit form, together with the geometric invariants derived from it.
//
// # Implicit and parametric forms
//
// An [Ellipse] stores the six coefficients of the general conic
//
//	a x² + 2b xy + c y² + 2d x + 2e y + f = 0
//
// Note the factors of two: the stored b, d, and e are half of the usual
// coefficients of xy, x, and y. [NewEllipseFromCoefficients] halves them on
// input and [Ellipse.Parameters] doubles them again on output, so callers
// only ever see the usual form.
//
// The same ellipse can be described parametrically, by its center, the
// lengths of its two semi-axes and the rotation of its major axis. [NewEllipse]
// converts from the parametric to the implicit form and [Ellipse.Transform]
// converts back. [Ellipse.Affine] and [Ellipse.TransformMatrix] express the
// parametric form as the affine map that takes the unit circle to the
// ellipse, and [NewEllipseFromAffine] is its inverse.
//
// Finally, [NewEllipseFromPoints] finds the unique conic through five points.
//
// # Invariants and degenerate conics
//
// Construction never fails. Any six numbers make a conic, even if it is a
// hyperbola, a parabola, or something more degenerate. The two discriminants
// [Ellipse.MinorDelta] and [Ellipse.MajorDelta] classify the conic, see
// [Ellipse.Kind]. Operations that only make sense for real ellipses, like
// [Ellipse.Center] and [Ellipse.MajorAxis], return [ErrDegenerateConic] for
// everything else.
//
// # Precision
//
// All computations use [Float], which is float64 by default. Building with
// the conic32 tag switches the whole package to float32, using
// github.com/chewxy/math32 for the elementary functions.
//
// # Literature
//
//   - [Matrix representation of conic sections]
//   - [Ellipse: General ellipse]
//   - [Multiple View Geometry] by Hartley and Zisserman, for the normalization used when fitting
//
// [Matrix representation of conic sections]: https://en.wikipedia.org/wiki/Matrix_representation_of_conic_sections
// [Ellipse: General ellipse]: https://en.wikipedia.org/wiki/Ellipse#General_ellipse
// [Multiple View Geometry]: https://www.robots.ox.ac.uk/~vgg/hzbook/
package conic
