package routes

import (
	"app_oficios/internal/adapter/http/handlers"

	"github.com/gin-gonic/gin"
)

const (
	PathSolicitudes = "/solicitudes"
	PathTrabajos    = "/trabajos"
	PathPagos       = "/pagos"
)

func addMarketplaceRoutes(
	rg *gin.RouterGroup,
	requestHandler *handlers.ServiceRequestHandler,
	jobHandler *handlers.JobHandler,
	paymentHandler *handlers.PaymentHandler,
) {
	solicitudes := rg.Group(PathSolicitudes)
	{
		solicitudes.POST("/enviar", requestHandler.SubmitRequest)
		solicitudes.PUT("/responder/:id_solicitud", requestHandler.RespondToRequest)
		solicitudes.GET("/pendientes/:id_profesional", requestHandler.ListPendingForProfessional)
		solicitudes.GET("/usuario/:id_usuario", requestHandler.ListForRequester)
		solicitudes.GET("/verificar/:id_usuario/:id_profesional", requestHandler.CheckPendingExists)
		solicitudes.GET("/turnos-disponibles/:id_profesional", requestHandler.GetWeeklySlots)
		solicitudes.POST("/confirmar-turno", requestHandler.ConfirmSlot)
	}

	trabajos := rg.Group(PathTrabajos)
	{
		trabajos.POST("/crear/:id_solicitud", jobHandler.CreateFromRequest)
		trabajos.PUT("/iniciar/:id", jobHandler.StartJob)
		trabajos.PUT("/pausar/:id", jobHandler.PauseJob)
		trabajos.PUT("/reanudar/:id", jobHandler.ResumeJob)
		trabajos.PUT("/finalizar/:id", jobHandler.FinalizeJob)
		trabajos.PUT("/cancelar/:id", jobHandler.CancelJob)
		trabajos.GET("/solicitud/:id_solicitud", jobHandler.GetJobByRequest)
		trabajos.GET("/profesional/:id", jobHandler.ListByProfessional)
		trabajos.GET("/usuario/:id", jobHandler.ListByRequester)
		trabajos.GET("/sin-factura", jobHandler.ListUnbilled)
		trabajos.GET("/:id", jobHandler.GetJob)
	}

	pagos := rg.Group(PathPagos)
	{
		pagos.POST("/crear-preferencia", paymentHandler.CreatePreference)
		pagos.GET("/config", paymentHandler.GetGatewayConfig)
	}
}
