// Package screenshot manages the scratch directory holding captured screens.
//
// Captures are stored as timestamp-named PNG files and can be read back by
// name afterwards. The directory is never cleaned implicitly; callers opt into
// retention with Store.Prune.
package screenshot
