// Package cache provides a small bounded LRU map.
//
// The raster backend keeps one font face per device pixel size. Zooming
// walks through many sizes, so faces are held in an LRU and closed when
// they fall out.
package cache
