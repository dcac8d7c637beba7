package errutil

var (
	ErrHTTPRequest      = NewInternalError("http request error")
	ErrJSONDecode       = NewInternalError("json decode error")
	ErrTimeParse        = NewInternalError("time parse error")
	ErrAccountAPINotOK  = NewInternalError("account api status code not ok")
	ErrDatabaseOpen     = NewInternalError("database open error")
	ErrDatabaseQuery    = NewInternalError("database query error")
	ErrDatabaseScan     = NewInternalError("database scan error")
	ErrDatabaseNotFound = NewInternalError("database record not found")
	ErrScheduler        = NewInternalError("scheduler error")
	ErrShowNotFound     = NewInternalError("show not found")
	ErrMalformedDays    = NewInternalError("malformed days value")
	ErrDelivery         = NewInternalError("notification delivery error")
	// everything that fits nowhere else
	ErrInternal = NewInternalError("internal something error")
)
