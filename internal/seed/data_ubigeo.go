package seed

// Geographic reference data: the 25 departamentos and a representative subset
// of their provincias and distritos. Names are the official accented forms
// and must stay byte-exact; lookups do no normalization.
//
// Distrito names repeat across provincias (two "San Juan", three
// "Bellavista", two "San Juan Bautista"); they are only addressable by the
// composite (provincia, nombre) key. Provincia names are unique nationwide
// in this dataset.

var departamentosData = []string{
	"Amazonas",
	"Áncash",
	"Apurímac",
	"Arequipa",
	"Ayacucho",
	"Cajamarca",
	"Callao",
	"Cusco",
	"Huancavelica",
	"Huánuco",
	"Ica",
	"Junín",
	"La Libertad",
	"Lambayeque",
	"Lima",
	"Loreto",
	"Madre de Dios",
	"Moquegua",
	"Pasco",
	"Piura",
	"Puno",
	"San Martín",
	"Tacna",
	"Tumbes",
	"Ucayali",
}

type provinciaData struct {
	nombre       string
	departamento string
	distritos    []string
}

var provinciasData = []provinciaData{
	// Amazonas
	{"Chachapoyas", "Amazonas", []string{
		"Chachapoyas", "Asunción", "Balsas", "Cheto", "Chiliquín", "Chuquibamba",
		"Granada", "Huancas", "La Jalca", "Leimebamba", "Levanto", "Magdalena",
		"Mariscal Castilla", "Molinopampa", "Montevideo", "Olleros", "Quinjalca",
		"San Francisco de Daguas", "San Isidro de Maino", "Soloco", "Sonche",
	}},
	{"Bagua", "Amazonas", []string{"Bagua", "La Peca", "Aramango"}},
	{"Bongará", "Amazonas", []string{"Jumbilla", "Florida", "Jazán"}},
	{"Condorcanqui", "Amazonas", []string{"Nieva", "El Cenepa"}},
	{"Luya", "Amazonas", []string{"Lámud", "Luya"}},
	{"Rodríguez de Mendoza", "Amazonas", []string{"San Nicolás", "Omia"}},
	{"Utcubamba", "Amazonas", []string{"Bagua Grande", "Cajaruro"}},

	// Áncash
	{"Huaraz", "Áncash", []string{"Huaraz", "Independencia", "Jangas"}},
	{"Santa", "Áncash", []string{"Chimbote", "Nuevo Chimbote", "Coishco"}},
	{"Huaylas", "Áncash", []string{"Caraz", "Huallanca"}},
	{"Yungay", "Áncash", []string{"Yungay", "Ranrahirca"}},
	{"Carhuaz", "Áncash", []string{"Carhuaz", "Anta"}},

	// Apurímac
	{"Abancay", "Apurímac", []string{"Abancay", "Tamburco"}},
	{"Andahuaylas", "Apurímac", []string{"Andahuaylas", "Talavera", "San Jerónimo"}},

	// Arequipa
	{"Arequipa", "Arequipa", []string{"Arequipa", "Cayma", "Cerro Colorado", "Yanahuara", "Paucarpata"}},
	{"Camaná", "Arequipa", []string{"Camaná", "Samuel Pastor"}},
	{"Islay", "Arequipa", []string{"Mollendo", "Mejía"}},

	// Ayacucho
	{"Huamanga", "Ayacucho", []string{"Ayacucho", "Carmen Alto", "San Juan Bautista", "Jesús Nazareno"}},
	{"Huanta", "Ayacucho", []string{"Huanta", "Iguaín"}},

	// Cajamarca
	{"Cajamarca", "Cajamarca", []string{"Cajamarca", "Baños del Inca", "San Juan", "Asunción"}},
	{"Jaén", "Cajamarca", []string{"Jaén", "Bellavista"}},
	{"Chota", "Cajamarca", []string{"Chota", "Lajas"}},

	// Callao
	{"Callao", "Callao", []string{"Callao", "Bellavista", "La Perla", "La Punta", "Ventanilla"}},

	// Cusco
	{"Cusco", "Cusco", []string{"Cusco", "San Sebastián", "San Jerónimo", "Wanchaq", "Santiago"}},
	{"Urubamba", "Cusco", []string{"Urubamba", "Ollantaytambo", "Machupicchu"}},
	{"La Convención", "Cusco", []string{"Santa Ana", "Echarate"}},

	// Huancavelica
	{"Huancavelica", "Huancavelica", []string{"Huancavelica", "Ascensión", "Acoria"}},
	{"Castrovirreyna", "Huancavelica", []string{"Castrovirreyna", "San Juan", "Arma"}},
	{"Tayacaja", "Huancavelica", []string{"Pampas", "Acraquia"}},

	// Huánuco
	{"Huánuco", "Huánuco", []string{"Huánuco", "Amarilis", "Pillco Marca"}},
	{"Leoncio Prado", "Huánuco", []string{"Rupa-Rupa", "Castillo Grande"}},

	// Ica
	{"Ica", "Ica", []string{"Ica", "Parcona", "Subtanjalla"}},
	{"Chincha", "Ica", []string{"Chincha Alta", "Sunampe"}},
	{"Pisco", "Ica", []string{"Pisco", "Paracas"}},
	{"Nazca", "Ica", []string{"Nazca", "Vista Alegre"}},

	// Junín
	{"Huancayo", "Junín", []string{"Huancayo", "El Tambo", "Chilca"}},
	{"Tarma", "Junín", []string{"Tarma", "Acobamba"}},
	{"Chanchamayo", "Junín", []string{"Chanchamayo", "Perené", "Pichanaqui"}},

	// La Libertad
	{"Trujillo", "La Libertad", []string{
		"Trujillo", "La Esperanza", "El Porvenir", "Víctor Larco Herrera", "Moche", "Huanchaco",
	}},
	{"Pacasmayo", "La Libertad", []string{"San Pedro de Lloc", "Pacasmayo", "Guadalupe"}},
	{"Ascope", "La Libertad", []string{"Ascope", "Chocope"}},

	// Lambayeque
	{"Chiclayo", "Lambayeque", []string{"Chiclayo", "José Leonardo Ortiz", "La Victoria", "Pimentel"}},
	{"Lambayeque", "Lambayeque", []string{"Lambayeque", "Mórrope"}},
	{"Ferreñafe", "Lambayeque", []string{"Ferreñafe", "Pítipo"}},

	// Lima
	{"Lima", "Lima", []string{
		"Lima", "Miraflores", "San Isidro", "Surquillo", "Barranco",
		"San Juan de Lurigancho", "San Juan de Miraflores", "Santiago de Surco",
		"La Molina", "Ate", "Comas",
	}},
	{"Huaral", "Lima", []string{"Huaral", "Chancay"}},
	{"Cañete", "Lima", []string{"San Vicente de Cañete", "Asia", "Mala"}},
	{"Barranca", "Lima", []string{"Barranca", "Paramonga"}},

	// Loreto
	{"Maynas", "Loreto", []string{"Iquitos", "Punchana", "Belén", "San Juan Bautista"}},
	{"Alto Amazonas", "Loreto", []string{"Yurimaguas", "Lagunas"}},

	// Madre de Dios
	{"Tambopata", "Madre de Dios", []string{"Tambopata", "Inambari", "Las Piedras"}},
	{"Manu", "Madre de Dios", []string{"Manu", "Madre de Dios"}},

	// Moquegua
	{"Mariscal Nieto", "Moquegua", []string{"Moquegua", "Samegua", "Torata"}},
	{"Ilo", "Moquegua", []string{"Ilo", "Pacocha"}},

	// Pasco
	{"Pasco", "Pasco", []string{"Chaupimarca", "Yanacancha"}},
	{"Oxapampa", "Pasco", []string{"Oxapampa", "Villa Rica", "Pozuzo"}},

	// Piura
	{"Piura", "Piura", []string{"Piura", "Castilla", "Veintiséis de Octubre", "Catacaos"}},
	{"Sullana", "Piura", []string{"Sullana", "Bellavista", "Marcavelica"}},
	{"Talara", "Piura", []string{"Pariñas", "Máncora"}},
	{"Paita", "Piura", []string{"Paita", "Colán"}},

	// Puno
	{"Puno", "Puno", []string{"Puno", "Acora"}},
	{"San Román", "Puno", []string{"Juliaca", "Caracoto"}},
	{"Chucuito", "Puno", []string{"Juli", "Desaguadero"}},

	// San Martín
	{"Moyobamba", "San Martín", []string{"Moyobamba", "Calzada", "Soritor"}},
	{"San Martín", "San Martín", []string{"Tarapoto", "Morales", "La Banda de Shilcayo"}},
	{"Rioja", "San Martín", []string{"Rioja", "Nueva Cajamarca"}},

	// Tacna
	{"Tacna", "Tacna", []string{"Tacna", "Alto de la Alianza", "Ciudad Nueva", "Pocollay"}},
	{"Tarata", "Tacna", []string{"Tarata", "Estique"}},

	// Tumbes
	{"Tumbes", "Tumbes", []string{"Tumbes", "Corrales", "San Jacinto"}},
	{"Zarumilla", "Tumbes", []string{"Zarumilla", "Aguas Verdes"}},

	// Ucayali
	{"Coronel Portillo", "Ucayali", []string{"Callería", "Yarinacocha", "Manantay"}},
	{"Padre Abad", "Ucayali", []string{"Padre Abad", "Irazola"}},
}
