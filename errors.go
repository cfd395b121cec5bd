package zkwatch

import (
	"fmt"

	"github.com/pkg/errors"
)

// ErrCode is the result code of a server operation.
// ErrCodeOk is success, every other documented code is a distinct failure.
type ErrCode int32

const (
	ErrCodeOk                      ErrCode = 0
	ErrCodeSystemError             ErrCode = -1
	ErrCodeRuntimeInconsistency    ErrCode = -2
	ErrCodeDataInconsistency       ErrCode = -3
	ErrCodeConnectionLoss          ErrCode = -4
	ErrCodeMarshallingError        ErrCode = -5
	ErrCodeUnimplemented           ErrCode = -6
	ErrCodeOperationTimeout        ErrCode = -7
	ErrCodeBadArguments            ErrCode = -8
	ErrCodeInvalidState            ErrCode = -9
	ErrCodeAPIError                ErrCode = -100
	ErrCodeNoNode                  ErrCode = -101
	ErrCodeNoAuth                  ErrCode = -102
	ErrCodeBadVersion              ErrCode = -103
	ErrCodeNoChildrenForEphemerals ErrCode = -108
	ErrCodeNodeExists              ErrCode = -110
	ErrCodeNotEmpty                ErrCode = -111
	ErrCodeSessionExpired          ErrCode = -112
	ErrCodeInvalidCallback         ErrCode = -113
	ErrCodeInvalidACL              ErrCode = -114
	ErrCodeAuthFailed              ErrCode = -115
	ErrCodeClosing                 ErrCode = -116
	ErrCodeNothing                 ErrCode = -117
	ErrCodeSessionMoved            ErrCode = -118
	ErrCodeNoWatcher               ErrCode = -121
)

var (
	ErrSystemError             = errors.New("zkwatch: system error")
	ErrRuntimeInconsistency    = errors.New("zkwatch: runtime inconsistency")
	ErrDataInconsistency       = errors.New("zkwatch: data inconsistency")
	ErrConnectionLoss          = errors.New("zkwatch: connection to the server is lost")
	ErrMarshallingError        = errors.New("zkwatch: error while marshalling")
	ErrUnimplemented           = errors.New("zkwatch: operation is unimplemented")
	ErrOperationTimeout        = errors.New("zkwatch: operation timed out")
	ErrBadArguments            = errors.New("zkwatch: invalid arguments")
	ErrInvalidState            = errors.New("zkwatch: invalid state")
	ErrAPIError                = errors.New("zkwatch: api error")
	ErrNoNode                  = errors.New("zkwatch: node does not exist")
	ErrNoAuth                  = errors.New("zkwatch: not authenticated")
	ErrBadVersion              = errors.New("zkwatch: version conflict")
	ErrNoChildrenForEphemerals = errors.New("zkwatch: ephemeral nodes may not have children")
	ErrNodeExists              = errors.New("zkwatch: node already exists")
	ErrNotEmpty                = errors.New("zkwatch: node has children")
	ErrSessionExpired          = errors.New("zkwatch: session has been expired by the server")
	ErrInvalidCallback         = errors.New("zkwatch: invalid callback specified")
	ErrInvalidACL              = errors.New("zkwatch: invalid ACL specified")
	ErrAuthFailed              = errors.New("zkwatch: client authentication failed")
	ErrClosing                 = errors.New("zkwatch: zookeeper is closing")
	ErrNothing                 = errors.New("zkwatch: no server responses to process")
	ErrSessionMoved            = errors.New("zkwatch: session moved to another server, so operation is ignored")
	ErrNoWatcher               = errors.New("zkwatch: no such watcher")
)

type errCodeInfo struct {
	name string
	err  error
}

var errCodes = map[ErrCode]errCodeInfo{
	ErrCodeOk:                      {name: "Ok"},
	ErrCodeSystemError:             {name: "SystemError", err: ErrSystemError},
	ErrCodeRuntimeInconsistency:    {name: "RuntimeInconsistency", err: ErrRuntimeInconsistency},
	ErrCodeDataInconsistency:       {name: "DataInconsistency", err: ErrDataInconsistency},
	ErrCodeConnectionLoss:          {name: "ConnectionLoss", err: ErrConnectionLoss},
	ErrCodeMarshallingError:        {name: "MarshallingError", err: ErrMarshallingError},
	ErrCodeUnimplemented:           {name: "Unimplemented", err: ErrUnimplemented},
	ErrCodeOperationTimeout:        {name: "OperationTimeout", err: ErrOperationTimeout},
	ErrCodeBadArguments:            {name: "BadArguments", err: ErrBadArguments},
	ErrCodeInvalidState:            {name: "InvalidState", err: ErrInvalidState},
	ErrCodeAPIError:                {name: "APIError", err: ErrAPIError},
	ErrCodeNoNode:                  {name: "NoNode", err: ErrNoNode},
	ErrCodeNoAuth:                  {name: "NoAuth", err: ErrNoAuth},
	ErrCodeBadVersion:              {name: "BadVersion", err: ErrBadVersion},
	ErrCodeNoChildrenForEphemerals: {name: "NoChildrenForEphemerals", err: ErrNoChildrenForEphemerals},
	ErrCodeNodeExists:              {name: "NodeExists", err: ErrNodeExists},
	ErrCodeNotEmpty:                {name: "NotEmpty", err: ErrNotEmpty},
	ErrCodeSessionExpired:          {name: "SessionExpired", err: ErrSessionExpired},
	ErrCodeInvalidCallback:         {name: "InvalidCallback", err: ErrInvalidCallback},
	ErrCodeInvalidACL:              {name: "InvalidACL", err: ErrInvalidACL},
	ErrCodeAuthFailed:              {name: "AuthFailed", err: ErrAuthFailed},
	ErrCodeClosing:                 {name: "Closing", err: ErrClosing},
	ErrCodeNothing:                 {name: "Nothing", err: ErrNothing},
	ErrCodeSessionMoved:            {name: "SessionMoved", err: ErrSessionMoved},
	ErrCodeNoWatcher:               {name: "NoWatcher", err: ErrNoWatcher},
}

func (e ErrCode) String() string {
	if info, ok := errCodes[e]; ok {
		return info.name
	}
	return fmt.Sprintf("ErrCode(%d)", int32(e))
}

// ToError returns the error value for a failure code, nil for ErrCodeOk.
// An undocumented code maps to a wrapped ErrUnknownCode, never to success.
func (e ErrCode) ToError() error {
	info, ok := errCodes[e]
	if !ok {
		return errors.Wrapf(ErrUnknownCode, "server result %d", int32(e))
	}
	return info.err
}

// ParseErrCode decodes a wire server result code.
func ParseErrCode(code int32) (ErrCode, error) {
	e := ErrCode(code)
	if _, ok := errCodes[e]; !ok {
		return 0, errors.Wrapf(ErrUnknownCode, "server result %d", code)
	}
	return e, nil
}

// LookupErrCode reports whether code is a documented server result code,
// for call sites that probe without aborting.
func LookupErrCode(code int32) (ErrCode, bool) {
	e := ErrCode(code)
	if _, ok := errCodes[e]; !ok {
		return 0, false
	}
	return e, true
}
