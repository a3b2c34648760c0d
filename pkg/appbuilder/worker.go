package appbuilder

// WorkerService is a long-running background task started by the
// application runtime. Implementations must not return from StartService
// until they are done.
type WorkerService interface {
	GetServiceName() string
	StartService()
}
