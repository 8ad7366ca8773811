package i18n

import "embed"

// Locales contém os arquivos de tradução embutidos no binário
//
//go:embed locales/*.json
var Locales embed.FS

// LocalesDir é o diretório dos arquivos dentro de Locales
const LocalesDir = "locales"
