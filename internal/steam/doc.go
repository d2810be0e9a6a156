// Package steam locates installed Steam applications by scraping Steam's
// on-disk records: the install root (registry on Windows, well-known paths
// elsewhere), the libraryfolders.vdf manifest, and per-app appmanifest
// files. Individual manifest failures never abort the search.
package steam
