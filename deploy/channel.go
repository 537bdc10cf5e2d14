package deploy

// SelectChannel maps the snapshot flag to the channel the version is
// uploaded to. Channel name legality is enforced by the remote host.
func SelectChannel(isSnapshot bool, releaseChannel, snapshotChannel string) string {
	if isSnapshot {
		return snapshotChannel
	}
	return releaseChannel
}
