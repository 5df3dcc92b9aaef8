package dotenv

import (
	"github.com/joho/godotenv"
)

// Load подмешивает .env в окружение, уже заданные переменные
// не перезаписываются. Порт сервиса переопределяется в cobra-флаге --port.
func Load(files ...string) error {
	return godotenv.Load(files...)
}
