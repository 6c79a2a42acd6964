package config

type App struct {
	Env   string `json:"env" yaml:"env"`
	Debug bool   `json:"debug" yaml:"debug"`
}

// Jwt 签发令牌配置
type Jwt struct {
	Secret        string `json:"secret" yaml:"secret"`
	AccessExpire  int    `json:"access_expire" yaml:"access_expire"`   // 秒
	RefreshExpire int    `json:"refresh_expire" yaml:"refresh_expire"` // 秒
}
