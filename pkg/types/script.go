package types

// ScriptType 锁定脚本模板类型
// 封闭枚举，分类器只会产出下列八种值
type ScriptType string

const (
	// ScriptTypeP2PK 公钥直付：<pub_key> OP_CHECKSIG
	ScriptTypeP2PK ScriptType = "p2pk"
	// ScriptTypeP2PKH 公钥哈希支付：OP_DUP OP_HASH160 <20字节> OP_EQUALVERIFY OP_CHECKSIG
	ScriptTypeP2PKH ScriptType = "p2pkh"
	// ScriptTypeP2SH 脚本哈希支付：OP_HASH160 <20字节> OP_EQUAL
	ScriptTypeP2SH ScriptType = "p2sh"
	// ScriptTypeP2WPKH 隔离见证公钥哈希：OP_0 <20字节>
	ScriptTypeP2WPKH ScriptType = "p2wpkh"
	// ScriptTypeP2WSH 隔离见证脚本哈希：OP_0 <32字节>
	ScriptTypeP2WSH ScriptType = "p2wsh"
	// ScriptTypeP2MS 裸多签：OP_m <keys...> OP_n OP_CHECKMULTISIG
	ScriptTypeP2MS ScriptType = "p2ms"
	// ScriptTypeNullData 数据承载输出：OP_RETURN <推送数据>
	ScriptTypeNullData ScriptType = "nulldata"
	// ScriptTypeUnknown 不匹配任何标准模板
	ScriptTypeUnknown ScriptType = "unknown"
)

// String 返回脚本类型的字符串表示
func (t ScriptType) String() string {
	return string(t)
}

// IsValid 检查脚本类型是否为已定义的枚举值
func (t ScriptType) IsValid() bool {
	switch t {
	case ScriptTypeP2PK, ScriptTypeP2PKH, ScriptTypeP2SH,
		ScriptTypeP2WPKH, ScriptTypeP2WSH, ScriptTypeP2MS,
		ScriptTypeNullData, ScriptTypeUnknown:
		return true
	}
	return false
}

// PayloadInfo 脚本分类结果
// Payload 的含义随类型而变：
//   - p2pkh/p2sh/p2wpkh: 20字节哈希
//   - p2wsh: 32字节哈希
//   - p2pk: 原始公钥（33或65字节）
//   - p2ms: 去掉末尾 OP_CHECKMULTISIG 字节的脚本体
//   - nulldata: 承载数据（不超过80字节）
//   - unknown: 完整脚本字节
type PayloadInfo struct {
	Type    ScriptType
	Payload []byte
}
