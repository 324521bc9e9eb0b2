// Package snapshot persists rendered surface trees.
//
// A Snapshot pairs the HTML of a memory surface with its serialized Tree.
// Stores keep snapshots by name:
//
//	store, err := snapshot.NewDiskStore(".vrec/snapshots")
//	snap := snapshot.New("after-click", session.Body)
//	err = store.Put(ctx, snap)
//
// DiskStore writes one JSON file per snapshot. S3Store writes one object
// per snapshot under a key prefix; its client is built from configuration
// and AWS_* environment credentials.
package snapshot
