package component

// AttackScript drives an entity's AttackRequest from a tengo script under
// prefabs/scripts.
type AttackScript struct {
	Path string
}

var AttackScriptComponent = NewComponent[AttackScript]("attack_script")
