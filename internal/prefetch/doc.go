package prefetch

// Package prefetch fills a fixed-capacity queue of cat records. Two fetches
// race to seed the first cards; the rest are fetched one after another so
// no more than two requests are ever in flight.
