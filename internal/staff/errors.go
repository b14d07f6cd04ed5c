package staff

import "errors"

var (
	// 名冊已滿，無法再加入工人
	ErrRosterFull = errors.New("staff: roster at capacity")
	// 嘗試將 nil 工人加入名冊
	ErrNilWorker = errors.New("staff: nil worker")
)
