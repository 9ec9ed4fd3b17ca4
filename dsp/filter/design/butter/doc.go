// Package butter designs digital Butterworth low-pass and high-pass filters.
//
// The design path is the classical analog-prototype route: place the
// normalized Butterworth poles on the left half s-plane unit circle, pre-warp
// the target cutoff to compensate for the bilinear transform's frequency
// compression, scale the poles, map each cascade section into the z-plane,
// and convolve the sections into a single transfer function normalized for
// unity passband gain.
//
// High-pass filters are derived by spectral inversion: a low-pass is designed
// at the cutoff mirrored about fs/4 and the signs of its odd-indexed
// coefficients are flipped, which substitutes z -> -z in the transfer
// function.
//
// All functions are pure and deterministic; independent designs may run
// concurrently.
package butter
