// Package catalog carries the built-in phrase catalogs.
//
//   - love: compliments for the LoverMatic
//   - hate: insults for the HaterMatic
//
// Both are built at package initialisation from literal slices and are
// immutable afterwards. Table lengths are whatever the slices hold; there is
// no separate count to keep in step. A malformed literal panics during init,
// so a broken build never reaches the first selection.
package catalog
