package dllist

// Logger абстракция предназначенная для логирования в строго определённых ситуациях.
// Реализация логирования должна делаться пользователями библиотеки.
type Logger interface {
	// OperandRejected операция op отвергла входные данные.
	OperandRejected(op string, err error)
	// SourceFailed ошибка при вычитке итератора в From.
	SourceFailed(err error)
}

type nopLogger struct{}

func (nopLogger) OperandRejected(string, error) {}
func (nopLogger) SourceFailed(error)            {}
