package template

import (
	"fmt"

	"github.com/weisyn/scriptkit/pkg/types"
)

// 标准模板的固定字节形状
const (
	compressedKeyMarker   = 0x21 // 33字节公钥的直接长度字节
	uncompressedKeyMarker = 0x41 // 65字节公钥的直接长度字节
	hash160Marker         = 0x14 // 20字节哈希的直接长度字节
	sha256Marker          = 0x20 // 32字节哈希的直接长度字节

	// nulldata承载上限
	maxNullDataSize = 80
)

// Classify 对锁定脚本做模板分类
//
// 按固定优先级依次匹配标准模板，全部不匹配时返回unknown且载荷为
// 完整脚本字节。返回的载荷与输入脚本共享底层数组。
// 空脚本是唯一的错误输入。
func Classify(script []byte) (types.PayloadInfo, error) {
	if len(script) == 0 {
		return types.PayloadInfo{}, fmt.Errorf("%w: empty script", types.ErrInvalidStructure)
	}

	if payload, ok := matchPubKey(script); ok {
		return types.PayloadInfo{Type: types.ScriptTypeP2PK, Payload: payload}, nil
	}
	if payload, ok := matchPubKeyHash(script); ok {
		return types.PayloadInfo{Type: types.ScriptTypeP2PKH, Payload: payload}, nil
	}
	if payload, ok := matchScriptHash(script); ok {
		return types.PayloadInfo{Type: types.ScriptTypeP2SH, Payload: payload}, nil
	}
	if payload, ok := matchWitnessPubKeyHash(script); ok {
		return types.PayloadInfo{Type: types.ScriptTypeP2WPKH, Payload: payload}, nil
	}
	if payload, ok := matchWitnessScriptHash(script); ok {
		return types.PayloadInfo{Type: types.ScriptTypeP2WSH, Payload: payload}, nil
	}
	if payload, ok := matchMultiSig(script); ok {
		return types.PayloadInfo{Type: types.ScriptTypeP2MS, Payload: payload}, nil
	}
	if payload, ok := matchNullData(script); ok {
		return types.PayloadInfo{Type: types.ScriptTypeNullData, Payload: payload}, nil
	}
	return types.PayloadInfo{Type: types.ScriptTypeUnknown, Payload: script}, nil
}

// matchPubKey 匹配公钥直付形状：<33或65字节公钥> OP_CHECKSIG
func matchPubKey(script []byte) ([]byte, bool) {
	switch len(script) {
	case 35:
		if script[0] == compressedKeyMarker && script[34] == byte(types.OP_CHECKSIG) {
			return script[1:34], true
		}
	case 67:
		if script[0] == uncompressedKeyMarker && script[66] == byte(types.OP_CHECKSIG) {
			return script[1:66], true
		}
	}
	return nil, false
}

// matchPubKeyHash 匹配公钥哈希形状：OP_DUP OP_HASH160 <20> OP_EQUALVERIFY OP_CHECKSIG
func matchPubKeyHash(script []byte) ([]byte, bool) {
	if len(script) == 25 &&
		script[0] == byte(types.OP_DUP) &&
		script[1] == byte(types.OP_HASH160) &&
		script[2] == hash160Marker &&
		script[23] == byte(types.OP_EQUALVERIFY) &&
		script[24] == byte(types.OP_CHECKSIG) {
		return script[3:23], true
	}
	return nil, false
}

// matchScriptHash 匹配脚本哈希形状：OP_HASH160 <20> OP_EQUAL
func matchScriptHash(script []byte) ([]byte, bool) {
	if len(script) == 23 &&
		script[0] == byte(types.OP_HASH160) &&
		script[1] == hash160Marker &&
		script[22] == byte(types.OP_EQUAL) {
		return script[2:22], true
	}
	return nil, false
}

// matchWitnessPubKeyHash 匹配见证公钥哈希形状：OP_0 <20>
func matchWitnessPubKeyHash(script []byte) ([]byte, bool) {
	if len(script) == 22 && script[0] == byte(types.OP_0) && script[1] == hash160Marker {
		return script[2:], true
	}
	return nil, false
}

// matchWitnessScriptHash 匹配见证脚本哈希形状：OP_0 <32>
func matchWitnessScriptHash(script []byte) ([]byte, bool) {
	if len(script) == 34 && script[0] == byte(types.OP_0) && script[1] == sha256Marker {
		return script[2:], true
	}
	return nil, false
}

// matchMultiSig 匹配裸多签形状：OP_m <keys...> OP_n OP_CHECKMULTISIG
//
// m、n须为OP_1..OP_16，两者之间恰好n个公钥推送（33或65字节直接
// 长度标记），游标须精确落在OP_n字节上。载荷为去掉末尾
// OP_CHECKMULTISIG的脚本前缀。
func matchMultiSig(script []byte) ([]byte, bool) {
	// 最短形式：OP_1 <33字节公钥> OP_1 OP_CHECKMULTISIG
	if len(script) < 37 {
		return nil, false
	}
	if script[len(script)-1] != byte(types.OP_CHECKMULTISIG) {
		return nil, false
	}

	m, ok := smallIntAt(script[0])
	if !ok {
		return nil, false
	}
	n, ok := smallIntAt(script[len(script)-2])
	if !ok || m > n {
		return nil, false
	}

	keyCount := 0
	i := 1
	for i < len(script)-2 {
		marker := int(script[i])
		if marker != 33 && marker != 65 {
			return nil, false
		}
		i += 1 + marker
		keyCount++
	}
	if i != len(script)-2 || keyCount != n {
		return nil, false
	}
	return script[:len(script)-1], true
}

// matchNullData 匹配数据承载形状：OP_RETURN <单个数据推送>
//
// 总长2..77时第二字节须为直接长度标记且等于剩余长度；
// 总长78..83时须为OP_PUSHDATA1加一致的长度字段。裸OP_RETURN、
// 内嵌长度不符、载荷超过80字节均不匹配。
func matchNullData(script []byte) ([]byte, bool) {
	if len(script) < 2 || script[0] != byte(types.OP_RETURN) {
		return nil, false
	}
	size := len(script)
	if size <= 77 {
		if int(script[1]) == size-2 {
			return script[2:], true
		}
		return nil, false
	}
	if size <= 83 && script[1] == byte(types.OP_PUSHDATA1) && int(script[2]) == size-3 {
		return script[3:], true
	}
	return nil, false
}

// smallIntAt 读取OP_1..OP_16范围内的小整数字节
func smallIntAt(b byte) (int, bool) {
	if b >= byte(types.OP_1) && b <= byte(types.OP_16) {
		return int(b-byte(types.OP_1)) + 1, true
	}
	return 0, false
}
