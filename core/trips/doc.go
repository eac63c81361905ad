// Package trips merges raw drives into continuous journeys. Consecutive
// drives are joined when the stop between them is short or clearly
// charging-related, so a coffee stop or a supercharger visit does not split
// one trip into several.
package trips
