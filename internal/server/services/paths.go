package services

// View paths whose cached renders are invalidated after mutations.
const DashboardPath = "/dashboard"

// AlbumPath is the per-album view path.
func AlbumPath(albumID string) string {
	return DashboardPath + "/albums/" + albumID
}

// ProfilePath is the public profile view path.
func ProfilePath(username string) string {
	return "/" + username
}
