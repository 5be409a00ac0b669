// Package base58check 提供带校验和的Base58编解码
//
// 编码：payload ‖ doubleSHA256(payload)前4字节，再做Base58字母表编码。
// 解码：剥离并验证校验和，返回原始载荷。前导零字节与前导'1'字符
// 严格一一对应。
package base58check

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/btcsuite/btcutil/base58"
	mrbase58 "github.com/mr-tron/base58"

	"github.com/weisyn/scriptkit/internal/core/infrastructure/script/digest"
	"github.com/weisyn/scriptkit/pkg/types"
)

// checksumSize 校验和长度
const checksumSize = 4

// Encode 将载荷编码为带校验和的Base58文本
func Encode(payload []byte) string {
	checksum := digest.DoubleSHA256(payload)[:checksumSize]
	buf := make([]byte, 0, len(payload)+checksumSize)
	buf = append(buf, payload...)
	buf = append(buf, checksum...)
	return base58.Encode(buf)
}

// Decode 解码带校验和的Base58文本并返回载荷
// 文本两侧的ASCII空白在解码前剥离；非法字符、校验和长度不足、
// 校验和不匹配均返回编码损坏错误
func Decode(text string) ([]byte, error) {
	text = strings.TrimSpace(text)

	raw, err := mrbase58.Decode(text)
	if err != nil {
		// mr-tron解码器会报告非法字符及其位置
		return nil, fmt.Errorf("%w: %v", types.ErrMalformedEncoding, err)
	}
	if len(raw) < checksumSize {
		return nil, fmt.Errorf("%w: not enough bytes for checksum: %d", types.ErrMalformedEncoding, len(raw))
	}

	payload := raw[:len(raw)-checksumSize]
	checksum := raw[len(raw)-checksumSize:]
	if !bytes.Equal(checksum, digest.DoubleSHA256(payload)[:checksumSize]) {
		return nil, fmt.Errorf("%w: invalid checksum", types.ErrMalformedEncoding)
	}
	return payload, nil
}

// DecodeN 解码并要求载荷长度恰好为n字节
func DecodeN(text string, n int) ([]byte, error) {
	payload, err := Decode(text)
	if err != nil {
		return nil, err
	}
	if len(payload) != n {
		return nil, fmt.Errorf("%w: invalid decoded size: %d instead of %d", types.ErrMalformedEncoding, len(payload), n)
	}
	return payload, nil
}
