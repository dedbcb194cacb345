package account

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"strings"
)

// Sign 计算请求签名 hex(HMAC-SHA256(secret, accID + accKey + timestamp))
func Sign(secret, accID, accKey, timestamp string) string {
	mac := hmac.New(sha256.New, []byte(secret))
	mac.Write([]byte(accID + accKey + timestamp))
	return hex.EncodeToString(mac.Sum(nil))
}

// Verify 使用常量时间比较，签名不区分大小写
func Verify(signature, secret, accID, accKey, timestamp string) bool {
	expected := Sign(secret, accID, accKey, timestamp)
	return hmac.Equal([]byte(strings.ToLower(signature)), []byte(expected))
}
