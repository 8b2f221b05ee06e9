package main

import (
	"fmt"
	"log"
	"net/http"
	"os"

	"github.com/SegurosCumbre/api-corredora/internal/agente"
	"github.com/SegurosCumbre/api-corredora/internal/conciliacion"
	"github.com/SegurosCumbre/api-corredora/internal/documento"
	"github.com/SegurosCumbre/api-corredora/internal/liquidacion"
	"github.com/SegurosCumbre/api-corredora/internal/pago"
	"github.com/SegurosCumbre/api-corredora/internal/poliza"
	"github.com/SegurosCumbre/api-corredora/internal/utils/db"

	"github.com/gorilla/mux"
	"github.com/joho/godotenv"
	"github.com/rs/cors"
)

func main() {
	// .env es opcional; en despliegue las variables vienen del entorno.
	_ = godotenv.Load()

	conexion, err := db.GetDB()
	if err != nil {
		log.Fatal("Error al conectar a la base de datos:", err)
	}

	// AutoMigrate para todos los modelos
	if err := agente.Migrate(conexion); err != nil {
		log.Fatal("Error en AutoMigrate:", err)
	}
	if err := poliza.Migrate(conexion); err != nil {
		log.Fatal("Error en AutoMigrate:", err)
	}
	if err := pago.Migrate(conexion); err != nil {
		log.Fatal("Error en AutoMigrate:", err)
	}
	if err := liquidacion.Migrate(conexion); err != nil {
		log.Fatal("Error en AutoMigrate:", err)
	}

	// Servicio externo de renderizado de documentos
	rutaRenderizador := os.Getenv("RENDERIZADOR_URL")
	if rutaRenderizador == "" {
		rutaRenderizador = "http://localhost:9090/documentos"
	}
	gateway := documento.NewGatewayHTTP(rutaRenderizador)

	// Repositorios y handlers
	polizaRepo := poliza.NewRepository(conexion)
	pagoRepo := pago.NewRepository(conexion)

	agenteHandler := agente.NewHandler(conexion)
	polizaHandler := poliza.NewHandler(polizaRepo)
	pagoHandler := pago.NewHandler(pagoRepo, polizaRepo)
	conciliacionHandler := conciliacion.NewHandler(conciliacion.NewConciliador(conexion))
	liquidacionHandler := liquidacion.NewHandler(liquidacion.NewServicio(conexion, gateway))

	// Router
	r := mux.NewRouter()

	// Rutas de agentes
	r.HandleFunc("/agentes", agenteHandler.CrearAgente).Methods("POST")
	r.HandleFunc("/agentes", agenteHandler.ListarAgentes).Methods("GET")
	r.HandleFunc("/agentes/{id}", agenteHandler.BuscarPorID).Methods("GET")

	// Rutas de pólizas
	r.HandleFunc("/polizas", polizaHandler.ListarPolizas).Methods("GET")
	r.HandleFunc("/polizas/{numero}", polizaHandler.BuscarPorNumero).Methods("GET")
	r.HandleFunc("/polizas/{numero}/pagos", pagoHandler.ListarPorPoliza).Methods("GET")

	// Carga masiva de pagos (conciliación)
	r.HandleFunc("/pagos/carga", conciliacionHandler.CargarPagos).Methods("POST")

	// Rutas de liquidaciones
	r.HandleFunc("/liquidaciones", liquidacionHandler.CrearLiquidacion).Methods("POST")
	r.HandleFunc("/liquidaciones", liquidacionHandler.ListarLiquidaciones).Methods("GET")
	r.HandleFunc("/liquidaciones/{id}", liquidacionHandler.BuscarPorID).Methods("GET")
	r.HandleFunc("/liquidaciones/{id}", liquidacionHandler.ActualizarLiquidacion).Methods("PUT")
	r.HandleFunc("/liquidaciones/{id}/documentos", liquidacionHandler.GenerarDocumento).Methods("POST")

	manejador := cors.AllowAll().Handler(r)

	puerto := os.Getenv("PORT")
	if puerto == "" {
		puerto = "8080"
	}

	fmt.Printf("Servidor corriendo en http://localhost:%s\n", puerto)
	log.Fatal(http.ListenAndServe(":"+puerto, manejador))
}
