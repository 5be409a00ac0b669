// Package template 提供锁定脚本的模板分类与构造
//
// 分类：在封闭类型集合{p2pk, p2pkh, p2sh, p2wpkh, p2wsh, p2ms,
// nulldata}上做原始字节的结构匹配，全部不匹配归入unknown并原样
// 携带脚本字节。匹配失败关闭：长度差一、标记错位等近似形状一律
// 不归类。
// 构造：从载荷正向生成规范脚本字节，载荷越界返回错误而非截断。
package template

import (
	scriptintf "github.com/weisyn/scriptkit/pkg/interfaces/infrastructure/script"
	"github.com/weisyn/scriptkit/pkg/types"
)

// Engine 实现script.TemplateEngine契约
type Engine struct{}

var _ scriptintf.TemplateEngine = (*Engine)(nil)

// New 创建锁定脚本模板引擎
func New() *Engine {
	return &Engine{}
}

// Classify 对锁定脚本做模板分类
func (e *Engine) Classify(script []byte) (types.PayloadInfo, error) {
	return Classify(script)
}

// Assert 断言脚本满足指定模板的全部结构规则
func (e *Engine) Assert(scriptType types.ScriptType, script []byte) error {
	return Assert(scriptType, script)
}

// PayToPubKey 构造公钥直付脚本
func (e *Engine) PayToPubKey(pubKey []byte) ([]byte, error) {
	return PayToPubKey(pubKey)
}

// PayToPubKeyHash 构造公钥哈希支付脚本
func (e *Engine) PayToPubKeyHash(pubKeyOrHash []byte) ([]byte, error) {
	return PayToPubKeyHash(pubKeyOrHash)
}

// PayToScriptHash 构造脚本哈希支付脚本
func (e *Engine) PayToScriptHash(redeemOrHash []byte) ([]byte, error) {
	return PayToScriptHash(redeemOrHash)
}

// PayToWitnessPubKeyHash 构造隔离见证公钥哈希脚本
func (e *Engine) PayToWitnessPubKeyHash(pubKeyOrHash []byte) ([]byte, error) {
	return PayToWitnessPubKeyHash(pubKeyOrHash)
}

// PayToWitnessScriptHash 构造隔离见证脚本哈希脚本
func (e *Engine) PayToWitnessScriptHash(scriptOrHash []byte) ([]byte, error) {
	return PayToWitnessScriptHash(scriptOrHash)
}

// MultiSig 构造裸多签脚本
func (e *Engine) MultiSig(m int, pubKeys [][]byte, lexSort bool) ([]byte, error) {
	return MultiSig(m, pubKeys, lexSort)
}

// NullData 构造数据承载脚本
func (e *Engine) NullData(data []byte) ([]byte, error) {
	return NullData(data)
}

// FromTypeAndPayload 从分类载荷反向构造脚本
func (e *Engine) FromTypeAndPayload(scriptType types.ScriptType, payload []byte) ([]byte, error) {
	return FromTypeAndPayload(scriptType, payload)
}
