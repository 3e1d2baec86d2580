package seed

// Catalog, user and sample-record seed data. Inert input: these literals are
// inserted verbatim, with lookups resolved byte-exact (accents included).

import (
	"time"

	"github.com/shopspring/decimal"
)

type catalogoData struct {
	nombre      string
	descripcion string
}

var estadosLoteData = []catalogoData{
	{"Disponible", "Lote disponible para la venta"},
	{"Reservado", "Lote reservado por un cliente"},
	{"Vendido", "Lote vendido"},
}

var estadosVentaData = []catalogoData{
	{"Pendiente", "Venta registrada, pendiente de confirmación"},
	{"Confirmada", "Venta confirmada y pagada"},
	{"Cancelada", "Venta cancelada"},
}

type monedaData struct {
	codigo      string
	descripcion string
}

var monedasData = []monedaData{
	{"PEN", "Sol peruano"},
	{"USD", "Dólar estadounidense"},
}

var tiposDocumentoData = []catalogoData{
	{"DNI", "Documento Nacional de Identidad"},
	{"RUC", "Registro Único de Contribuyentes"},
	{"Carnet de Extranjería", "Documento de identidad para extranjeros residentes"},
	{"Pasaporte", "Pasaporte"},
}

var tiposLoteData = []catalogoData{
	{"Residencial", "Lote para vivienda"},
	{"Comercial", "Lote para uso comercial"},
	{"Industrial", "Lote para uso industrial"},
	{"Agrícola", "Lote para uso agrícola"},
}

var rolesData = []catalogoData{
	{"ADMIN", "Administrador del sistema"},
	{"VENDEDOR", "Asesor de ventas"},
}

type usuarioData struct {
	username string
	nombre   string
	email    string
	password string
	roles    []string
}

var usuariosData = []usuarioData{
	{
		username: "admin",
		nombre:   "Administrador",
		email:    "admin@inmobiliaria.pe",
		password: "admin123",
		roles:    []string{"ADMIN"},
	},
	{
		username: "jperez",
		nombre:   "Juan Pérez",
		email:    "jperez@inmobiliaria.pe",
		password: "ventas123",
		roles:    []string{"VENDEDOR"},
	},
}

type clienteData struct {
	nombres         string
	apellidos       string
	tipoDocumento   string
	numeroDocumento string
	telefono        string
	email           string
	direccion       string
	visitas         int
}

var clientesData = []clienteData{
	{
		nombres:         "María Elena",
		apellidos:       "Quispe Huamán",
		tipoDocumento:   "DNI",
		numeroDocumento: "45781236",
		telefono:        "987654321",
		email:           "maria.quispe@gmail.com",
		direccion:       "Av. Los Incas 450, Cajamarca",
		visitas:         3,
	},
	{
		nombres:         "Carlos Alberto",
		apellidos:       "Rodríguez Vega",
		tipoDocumento:   "DNI",
		numeroDocumento: "41235678",
		telefono:        "956123478",
		email:           "carlos.rodriguez@hotmail.com",
		direccion:       "Jr. Amazonas 210, Chachapoyas",
		visitas:         1,
	},
	{
		nombres:         "Inversiones del Norte",
		apellidos:       "S.A.C.",
		tipoDocumento:   "RUC",
		numeroDocumento: "20481234567",
		telefono:        "044-223344",
		email:           "contacto@inversionesnorte.pe",
		direccion:       "Av. España 1250, Trujillo",
		visitas:         5,
	},
	{
		nombres:         "Lucía",
		apellidos:       "Fernández Soto",
		tipoDocumento:   "DNI",
		numeroDocumento: "72345981",
		telefono:        "912345678",
		email:           "lucia.fernandez@gmail.com",
		direccion:       "Calle Las Begonias 180, Lima",
		visitas:         2,
	},
	{
		nombres:         "Thomas",
		apellidos:       "Müller",
		tipoDocumento:   "Carnet de Extranjería",
		numeroDocumento: "001234567",
		telefono:        "998877665",
		email:           "t.mueller@gmail.com",
		direccion:       "Av. Arequipa 3400, Lima",
		visitas:         0,
	},
}

type loteData struct {
	nombre      string
	descripcion string
	tipoLote    string
	provincia   string
	distrito    string
	direccion   string
	precio      decimal.Decimal
	area        decimal.Decimal
}

var lotesData = []loteData{
	{
		nombre:      "Lote A-01",
		descripcion: "Lote esquinero en la urbanización Los Sauces",
		tipoLote:    "Residencial",
		provincia:   "Chachapoyas",
		distrito:    "Chachapoyas",
		direccion:   "Mz. A Lt. 1, Urb. Los Sauces",
		precio:      decimal.RequireFromString("85000.00"),
		area:        decimal.RequireFromString("120.00"),
	},
	{
		nombre:      "Lote A-02",
		descripcion: "Lote intermedio en la urbanización Los Sauces",
		tipoLote:    "Residencial",
		provincia:   "Chachapoyas",
		distrito:    "Chachapoyas",
		direccion:   "Mz. A Lt. 2, Urb. Los Sauces",
		precio:      decimal.RequireFromString("78000.00"),
		area:        decimal.RequireFromString("110.50"),
	},
	{
		nombre:      "Lote B-01",
		descripcion: "Lote con frente a la vía principal",
		tipoLote:    "Comercial",
		provincia:   "Chachapoyas",
		distrito:    "Huancas",
		direccion:   "Mz. B Lt. 1, Sector Huancas",
		precio:      decimal.RequireFromString("130000.00"),
		area:        decimal.RequireFromString("200.00"),
	},
	{
		nombre:      "Lote C-01",
		descripcion: "Lote residencial en zona de expansión urbana",
		tipoLote:    "Residencial",
		provincia:   "Cajamarca",
		distrito:    "San Juan",
		direccion:   "Mz. C Lt. 1, Sector El Mirador",
		precio:      decimal.RequireFromString("64000.00"),
		area:        decimal.RequireFromString("96.00"),
	},
	{
		nombre:      "Lote C-02",
		descripcion: "Lote amplio con pendiente ligera",
		tipoLote:    "Agrícola",
		provincia:   "Castrovirreyna",
		distrito:    "San Juan",
		direccion:   "Parcela 14, Valle de San Juan",
		precio:      decimal.RequireFromString("42000.00"),
		area:        decimal.RequireFromString("540.00"),
	},
	{
		nombre:      "Lote D-01",
		descripcion: "Lote industrial cerca del parque industrial",
		tipoLote:    "Industrial",
		provincia:   "Trujillo",
		distrito:    "Moche",
		direccion:   "Km 562 Panamericana Norte",
		precio:      decimal.RequireFromString("250000.00"),
		area:        decimal.RequireFromString("1000.00"),
	},
	{
		nombre:      "Lote E-01",
		descripcion: "Lote residencial en zona consolidada",
		tipoLote:    "Residencial",
		provincia:   "Lima",
		distrito:    "San Juan de Lurigancho",
		direccion:   "Mz. E Lt. 1, Urb. Canto Grande",
		precio:      decimal.RequireFromString("175000.00"),
		area:        decimal.RequireFromString("90.00"),
	},
	{
		nombre:      "Lote E-02",
		descripcion: "Lote comercial con doble frente",
		tipoLote:    "Comercial",
		provincia:   "Arequipa",
		distrito:    "Cayma",
		direccion:   "Av. Ejército 1100",
		precio:      decimal.RequireFromString("310000.00"),
		area:        decimal.RequireFromString("180.00"),
	},
}

type ventaData struct {
	clienteDocumento string
	lote             string
	moneda           string
	fecha            time.Time
	monto            decimal.Decimal
}

var ventasData = []ventaData{
	{
		clienteDocumento: "45781236",
		lote:             "Lote A-01",
		moneda:           "PEN",
		fecha:            time.Date(2024, time.March, 12, 0, 0, 0, 0, time.UTC),
		monto:            decimal.RequireFromString("85000.00"),
	},
	{
		clienteDocumento: "20481234567",
		lote:             "Lote D-01",
		moneda:           "USD",
		fecha:            time.Date(2024, time.April, 3, 0, 0, 0, 0, time.UTC),
		monto:            decimal.RequireFromString("67500.00"),
	},
	{
		clienteDocumento: "72345981",
		lote:             "Lote E-01",
		moneda:           "PEN",
		fecha:            time.Date(2024, time.May, 20, 0, 0, 0, 0, time.UTC),
		monto:            decimal.RequireFromString("175000.00"),
	},
}
