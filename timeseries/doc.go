// Package timeseries provides the dataset container shared by every tsmp
// component: an ordered collection of equal-length, multi-channel series
// stored in a single flat row-major buffer.
//
// Layout:
//
//	value (series i, time t, channel c) lives at ((i*sz)+t)*d + c
//
// Because channels are the innermost dimension, every stride-1 window of
// consecutive time steps is a contiguous range of the buffer. Series and
// Window views are therefore plain subslices: no copy, no stride
// arithmetic, shared read-only ownership of the backing buffer.
//
// Ragged inputs are normalized upstream of any computation: shorter series
// are padded with NaN to the length of the longest one.
package timeseries
