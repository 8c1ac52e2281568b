package storage

import (
	"errors"
	"strings"

	"github.com/minio/minio-go/v7"
)

// IsNoSuchKey 判断错误是否表示对象不存在。
func IsNoSuchKey(err error) bool {
	return matchErrorCode(err, []string{"nosuchkey", "notfound"},
		"nosuchkey", "specified key does not exist")
}

// IsNoSuchBucket 判断错误是否表示 Bucket 不存在。
func IsNoSuchBucket(err error) bool {
	return matchErrorCode(err, []string{"nosuchbucket"},
		"nosuchbucket", "specified bucket does not exist")
}

// matchErrorCode 先比对 S3 错误码，再回退到错误文本，
// 网关或代理可能把错误包装成普通字符串。
func matchErrorCode(err error, codes []string, fragments ...string) bool {
	if err == nil {
		return false
	}

	var minioErr minio.ErrorResponse
	if errors.As(err, &minioErr) {
		code := strings.ToLower(strings.TrimSpace(minioErr.Code))
		for _, c := range codes {
			if code == c {
				return true
			}
		}
	}

	lower := strings.ToLower(err.Error())
	for _, f := range fragments {
		if strings.Contains(lower, f) {
			return true
		}
	}
	return false
}
