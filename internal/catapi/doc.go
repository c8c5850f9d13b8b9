package catapi

// Package catapi fetches cat records from the cataas.com JSON endpoint and
// preloads their images. Network and parse failures yield a nil record;
// image load failures yield a record marked failed. Neither is fatal.
