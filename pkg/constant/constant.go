package constant

import "time"

const (
	ROLE_ID_ADMIN    = 1
	ROLE_ID_ENGINEER = 2
	ROLE_ID_BOARD    = 3

	REDIS_REQUEST_RESET_PASSWORD_IP_KEYS      = "reset-password:ip:%s"
	REDIS_REQUEST_MAX_ATTEMPTS_RESET_PASSWORD = 5
	REDIS_REQUEST_IP_EXPIRE                   = 240
	REDIS_KEY_USER_LOGIN                      = "login_token_user_"
	REDIS_KEY_AUTO_LOGOUT                     = "user_auto_logout"
	REDIS_KEY_REFRESH_TOKEN                   = "refresh-token:%s"
	REDIS_MAX_REFRESH_TOKEN                   = 30

	REFCACHE_KEY_FORMAT = "ref:%s:%s"
	REFCACHE_TTL        = 10 * time.Minute

	REFCACHE_ENTITY_PROJECTS = "projects"
	REFCACHE_ENTITY_TEAMS    = "labour_teams"
	REFCACHE_ENTITY_TYPES    = "labour_types"

	RETRY_MAX_RETRIES   = 2
	RETRY_INITIAL_DELAY = 300 * time.Millisecond

	BOARD_CHANNEL = "board"

	DATE_LAYOUT = "2006-01-02"

	PATH_ASSETS_HTML = "assets/html"
)
