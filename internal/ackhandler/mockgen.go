//go:build generate

package ackhandler

//go:generate sh -c "go run go.uber.org/mock/mockgen -package ackhandler -source interfaces.go -destination mock_session_notifier_test.go"
