package zkwatch

import (
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
)

var documentedErrCodes = map[int32]ErrCode{
	0:    ErrCodeOk,
	-1:   ErrCodeSystemError,
	-2:   ErrCodeRuntimeInconsistency,
	-3:   ErrCodeDataInconsistency,
	-4:   ErrCodeConnectionLoss,
	-5:   ErrCodeMarshallingError,
	-6:   ErrCodeUnimplemented,
	-7:   ErrCodeOperationTimeout,
	-8:   ErrCodeBadArguments,
	-9:   ErrCodeInvalidState,
	-100: ErrCodeAPIError,
	-101: ErrCodeNoNode,
	-102: ErrCodeNoAuth,
	-103: ErrCodeBadVersion,
	-108: ErrCodeNoChildrenForEphemerals,
	-110: ErrCodeNodeExists,
	-111: ErrCodeNotEmpty,
	-112: ErrCodeSessionExpired,
	-113: ErrCodeInvalidCallback,
	-114: ErrCodeInvalidACL,
	-115: ErrCodeAuthFailed,
	-116: ErrCodeClosing,
	-117: ErrCodeNothing,
	-118: ErrCodeSessionMoved,
	-121: ErrCodeNoWatcher,
}

func TestParseErrCode(t *testing.T) {
	t.Run("documented codes round trip", func(t *testing.T) {
		for code, expected := range documentedErrCodes {
			errCode, err := ParseErrCode(code)
			assert.Equal(t, nil, err)
			assert.Equal(t, expected, errCode)
			assert.Equal(t, code, int32(errCode))
		}
	})

	t.Run("no node", func(t *testing.T) {
		errCode, err := ParseErrCode(-101)
		assert.Equal(t, nil, err)
		assert.Equal(t, ErrCodeNoNode, errCode)
	})

	t.Run("ok is success not failure", func(t *testing.T) {
		errCode, err := ParseErrCode(0)
		assert.Equal(t, nil, err)
		assert.Equal(t, ErrCodeOk, errCode)
		assert.Equal(t, nil, errCode.ToError())
	})

	t.Run("undocumented code fails", func(t *testing.T) {
		for _, code := range []int32{1, -50, -104, -122} {
			errCode, err := ParseErrCode(code)
			assert.Equal(t, ErrCode(0), errCode)
			assert.Equal(t, true, errors.Is(err, ErrUnknownCode))
		}
	})
}

func TestLookupErrCode(t *testing.T) {
	t.Run("documented", func(t *testing.T) {
		errCode, ok := LookupErrCode(-112)
		assert.Equal(t, true, ok)
		assert.Equal(t, ErrCodeSessionExpired, errCode)
	})

	t.Run("undocumented is absent", func(t *testing.T) {
		errCode, ok := LookupErrCode(-122)
		assert.Equal(t, false, ok)
		assert.Equal(t, ErrCode(0), errCode)
	})

	t.Run("undocumented is never treated as ok", func(t *testing.T) {
		_, ok := LookupErrCode(-13)
		assert.Equal(t, false, ok)
	})
}

func TestErrCode_ToError(t *testing.T) {
	assert.Equal(t, nil, ErrCodeOk.ToError())
	assert.Equal(t, ErrNoNode, ErrCodeNoNode.ToError())
	assert.Equal(t, ErrConnectionLoss, ErrCodeConnectionLoss.ToError())
	assert.Equal(t, ErrNoWatcher, ErrCodeNoWatcher.ToError())

	err := ErrCode(-55).ToError()
	assert.Equal(t, true, errors.Is(err, ErrUnknownCode))
	assert.Equal(t, "server result -55: zkwatch: unknown wire code", err.Error())
}

func TestErrCode_String(t *testing.T) {
	assert.Equal(t, "Ok", ErrCodeOk.String())
	assert.Equal(t, "NoNode", ErrCodeNoNode.String())
	assert.Equal(t, "SessionExpired", ErrCodeSessionExpired.String())
	assert.Equal(t, "ErrCode(-55)", ErrCode(-55).String())
}
