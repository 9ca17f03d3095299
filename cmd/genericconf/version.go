// Copyright 2021-2023, Offchain Labs, Inc.
// For license information, see https://github.com/nitro/blob/master/LICENSE

package genericconf

import (
	"runtime/debug"
)

// GetVersion returns the vcs revision, a short form of the revision suitable
// for version strings, and the vcs commit time. The populated arguments take
// precedence when set via ldflags at link time.
func GetVersion(populatedVersion string, populatedDatetime string, populatedModified string) (string, string, string) {
	vcsRevision := "development"
	vcsTime := "development"
	vcsModified := "false"

	if info, ok := debug.ReadBuildInfo(); ok {
		for _, kv := range info.Settings {
			switch kv.Key {
			case "vcs.revision":
				vcsRevision = kv.Value
			case "vcs.time":
				vcsTime = kv.Value
			case "vcs.modified":
				vcsModified = kv.Value
			}
		}
	}

	if populatedVersion != "" {
		vcsRevision = populatedVersion
	}
	if populatedDatetime != "" {
		vcsTime = populatedDatetime
	}
	if populatedModified != "" {
		vcsModified = populatedModified
	}

	strippedRevision := vcsRevision
	if len(strippedRevision) > 7 {
		strippedRevision = strippedRevision[:7]
	}
	if vcsModified == "true" {
		vcsRevision += "-modified"
		strippedRevision += "-modified"
	}

	return vcsRevision, strippedRevision, vcsTime
}
